package render

const blockVertexShader = `
#version 330

in vec3 vertexPosition;
in vec3 vertexNormal;

uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;

out vec3 fragWorldPos;
out vec3 fragNormal;

void main() {
    fragWorldPos = vec3(matModel * vec4(vertexPosition, 1.0));
    fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
    gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`

const blockFragmentShader = `
#version 330

in vec3 fragWorldPos;
in vec3 fragNormal;

uniform vec4 colDiffuse;

// Plano de corte: descarta fragmentos além do plano quando ativo.
// clipPos já chega com o sinal invertido em relação ao slider.
uniform float clipEnabled;
uniform vec3 clipNormal;
uniform float clipPos;

out vec4 finalColor;

void main() {
    if (clipEnabled > 0.5 && dot(fragWorldPos, clipNormal) > clipPos) discard;

    // Iluminação básica: lambert + ambiente fixo
    vec3 lightDir = normalize(vec3(0.5, 0.8, 0.3));
    vec3 normal = normalize(fragNormal);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 light = vec3(0.45) + vec3(0.55) * diff;

    finalColor = vec4(colDiffuse.rgb * light, colDiffuse.a);
}
`
